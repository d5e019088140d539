package main

import (
	"ix-advisor/cmd"

	_ "github.com/denisenkom/go-mssqldb"
)

func main() {
	cmd.Execute()
}
