package main

import "github.com/emojiscan/emojiscan/cmd/emojiscan"

func main() { emojiscan.Execute() }
