package main

import (
	"github.com/nadiff/nadiff/cmd"
	"github.com/nadiff/nadiff/internal/logging"
)

func main() {
	defer logging.RecoverPanic("main", nil)

	cmd.Execute()
}
