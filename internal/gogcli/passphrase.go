package gogcli

import (
	"bytes"
	"errors"
	"io"
	"syscall"
)

// passphrasePrompt is the text gogcli's keyring prints when it needs a
// passphrase on an interactive terminal.
const passphrasePrompt = "Enter passphrase"

// passphraseReply confirms the prompt with an empty line, accepting the
// keyring default.
const passphraseReply = "\r"

// forwardAnsweringPassphrase copies r to out until EOF. The first time the
// passphrase prompt appears in the stream, exactly one empty confirmation is
// written to reply; everything read from r is forwarded to out unmodified,
// and the injected reply itself is never forwarded.
//
// Prompt detection keeps a tail of the previous chunk so a prompt split
// across two reads is still matched. Returns whether a reply was sent.
func forwardAnsweringPassphrase(r io.Reader, reply io.Writer, out io.Writer) (bool, error) {
	var (
		answered bool
		tail     []byte
		buf      = make([]byte, 4096)
	)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if _, werr := out.Write(chunk); werr != nil {
				return answered, werr
			}
			if !answered {
				window := append(tail, chunk...)
				if bytes.Contains(window, []byte(passphrasePrompt)) {
					if _, werr := io.WriteString(reply, passphraseReply); werr != nil {
						return answered, werr
					}
					answered = true
				} else {
					if keep := len(passphrasePrompt) - 1; len(window) > keep {
						window = window[len(window)-keep:]
					}
					tail = append(tail[:0], window...)
				}
			}
		}
		if err != nil {
			if err == io.EOF || isPtyClosed(err) {
				return answered, nil
			}
			return answered, err
		}
	}
}

// isPtyClosed reports whether err is the EIO a Linux pty master returns once
// the child has exited. It marks normal end of stream, not a failure.
func isPtyClosed(err error) bool {
	return errors.Is(err, syscall.EIO)
}
