// Package clipboard copies text to the system clipboard, falling back to the OSC52 terminal
// escape when no native clipboard tool is available (for example over SSH).
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-chart/logging"
)

// Method reports how a copy was delivered.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

var nativeWrite = clipboard.WriteAll

// Copy tries the native clipboard first and OSC52 second.
func Copy(text string) (Method, error) {
	if !clipboard.Unsupported {
		err := nativeWrite(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes natively", len(text))
			return MethodNative, nil
		}
		logging.Warnf("Clipboard: native copy failed: %v", err)
	}

	if err := copyOSC52(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return MethodOSC52, nil
}
