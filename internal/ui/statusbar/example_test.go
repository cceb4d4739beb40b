package statusbar_test

import (
	"fmt"

	"github.com/riordanpawley/customalert/internal/types"
	"github.com/riordanpawley/customalert/internal/ui/statusbar"
	"github.com/riordanpawley/customalert/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	sb := statusbar.New(types.ModeMenu, 80, styles.New(), nil)

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	fmt.Println(len(rendered) > 0)
	// Output: true
}
