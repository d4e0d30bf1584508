package issuetracker

import (
	"errors"
	"fmt"
	"io"
)

type legacyTermination struct {
	w    io.Writer
	exit func(code int)
}

// fail возвращает err вызывающему. В режиме WithLegacyTermination
// TransportError сначала выводится вместе со статусом и процесс
// завершается через exit(1).
func (c *Client) fail(err error) error {
	var te *TransportError
	if c.legacy != nil && errors.As(err, &te) {
		if c.legacy.w != nil {
			_, _ = fmt.Fprintf(c.legacy.w, "%s\n%d\n", te.Error(), te.StatusCode)
		}
		if c.legacy.exit != nil {
			c.legacy.exit(1)
		}
	}
	return err
}
