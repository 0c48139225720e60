// Package flatfile implements the repository interfaces on plain text files.
package flatfile

import (
	"os"
)

// appendLine opens path for appending, writes line plus a newline in a
// single write call, and closes it. With O_APPEND the kernel positions
// every write at the current end, so concurrent appenders never split a line.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write([]byte(line + "\n")); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
