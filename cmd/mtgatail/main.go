package main

import "github.com/antalos/mtgatracker/cmd/mtgatail/mtgatailcmd"

func main() { mtgatailcmd.Execute() }
