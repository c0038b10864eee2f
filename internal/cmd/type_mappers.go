package cmd

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	// percent accepts "75" or "75%" and requires a value in [1, 100].
	kong.NamedMapper("percent", kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("percent", &s); err != nil {
			return err
		}

		p, err := ParsePercent(s)
		if err != nil {
			return err
		}

		target.SetInt(int64(p))
		return nil
	})),
}

// ParsePercent parses a shuffle percentage.
func ParsePercent(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil || p < 1 || p > 100 {
		return 0, fmt.Errorf(`must be a percentage between 1 and 100 but got "%s"`, s)
	}

	return p, nil
}
