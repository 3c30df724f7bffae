package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// collectPaths turns CLI arguments into gif file paths. In directory mode
// every *.gif entry of each given directory is taken; otherwise the arguments
// are the files themselves.
func collectPaths(args []string, dirMode bool) []string {
	if !dirMode {
		return args
	}

	var paths []string
	for _, arg := range args {
		entries, err := os.ReadDir(arg)
		if err != nil {
			fmt.Printf("❌ Failed reading '%s': %s\n", arg, err.Error())
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".gif" {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
		}
	}
	return paths
}
