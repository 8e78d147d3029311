package main

import "github.com/tenanthub/company-management/cmd"

func main() {
	cmd.Execute()
}
