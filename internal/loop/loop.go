// Package loop runs the game in a local terminal.
package loop

import (
	"bufio"
	"io"

	"github.com/tomz197/bulletdodge/internal/loop/client"
	"github.com/tomz197/bulletdodge/internal/loop/server"
)

// Run plays a single local session on r and w with the standard
// Input -> Update -> Draw cycle. Blocks until the player quits.
func Run(r *bufio.Reader, w io.Writer, opts client.ClientOptions) error {
	srv := server.NewServer()
	return client.NewClient(srv, r, w, opts).Run()
}
