package main

import "embed"

// configFS holds the shipped tuning, animation manifest, sprites and levels
//
//go:embed configs
var configFS embed.FS
