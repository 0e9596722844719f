package debug

import (
	"fmt"
	"os"

	"github.com/mineworks/tagconf/conf"
)

// Conf renders a section as YAML when logged.
type Conf struct{ *conf.Section }

func (c Conf) String() string {
	d, err := conf.ToYAML(c.Section)
	if err != nil {
		return fmt.Sprintf("[raw *conf.Section] %v", c.Section)
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *conf.Section:
			args[i] = Conf{x}.String()
		case Conf:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
