package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/daniilsolovey/church-portal/internal/auth"
	"github.com/namsral/flag"
	"golang.org/x/term"
)

// HashPassword handles the hash-password subcommand. It prints an Argon2id
// hash usable as ADMIN_PASSWORD.
func HashPassword(args []string) int {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: church-portal hash-password\n\n")
		fmt.Fprintf(os.Stderr, "Prints an Argon2id hash of the admin password for ADMIN_PASSWORD.\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	password, err := readPassword(os.Stdin, "Enter password:   ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		return 1
	}

	confirm, err := readPassword(os.Stdin, "Confirm password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password confirmation: %v\n", err)
		return 1
	}

	hash, err := hashConfirmed(password, confirm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(hash)
	return 0
}

func hashConfirmed(password, confirm string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}

	return auth.HashPassword(password)
}

// readPassword reads a line without echo when stdin is a terminal.
func readPassword(in *os.File, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(b), err
	}

	return readLine(in)
}

func readLine(r io.Reader) (string, error) {
	var (
		line []byte
		buf  [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			if buf[0] != '\r' {
				line = append(line, buf[0])
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
	}

	return string(line), nil
}
