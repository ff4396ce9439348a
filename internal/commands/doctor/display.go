package doctor

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// DisplayDialer connects to an X display and describes its default screen.
type DisplayDialer func(display string) (string, error)

// DisplayCheck verifies the target X display accepts connections.
type DisplayCheck struct {
	display string
	dial    DisplayDialer
}

// NewDisplayCheck creates a display check. A nil dial uses DialX.
func NewDisplayCheck(display string, dial DisplayDialer) *DisplayCheck {
	if dial == nil {
		dial = DialX
	}
	return &DisplayCheck{display: display, dial: dial}
}

func (c *DisplayCheck) Name() string {
	return "X Display"
}

func (c *DisplayCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	screen, err := c.dial(c.display)
	if err != nil {
		result.fail(c.display, err.Error())
		return result
	}

	result.pass(c.display, screen)
	return result
}

// DialX opens an X11 connection and reports the default screen size.
func DialX(display string) (string, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return "", fmt.Errorf("connect to display %s: %w", display, err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return fmt.Sprintf("screen %dx%d", screen.WidthInPixels, screen.HeightInPixels), nil
}
