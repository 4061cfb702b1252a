package safe

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// Go runs f on a new goroutine, a panic inside f terminates the process after logging it
func Go(f func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				log.Fatal().Str("panic", fmt.Sprint(err)).Str("stack", string(debug.Stack())).Msgf("recovered from a panic, will exit...")
				os.Exit(1)
			}
		}()
		f()
	}()
}
