/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/fero-tech/claimrunner/cmd"

func main() {
	cmd.Execute()
}
