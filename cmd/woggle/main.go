package main

import "github.com/no1453/woggle/internal/cli"

func main() {
	cli.Execute()
}
