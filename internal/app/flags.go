package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrianAraqueG/gaston/internal/core"
)

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// subcommand splits "list -x" into the verb and its arguments.
func subcommand(args []string, verbs ...string) (string, []string, error) {
	if len(args) == 0 {
		return verbs[0], nil, nil
	}
	for _, v := range verbs {
		if args[0] == v {
			return v, args[1:], nil
		}
	}
	return "", nil, fmt.Errorf("%w: expected one of %s, got %q", ErrUsage, strings.Join(verbs, "|"), args[0])
}

// idArg reads the leading numeric id of "update 3 -name x".
func idArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: missing id", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: invalid id %q", ErrUsage, args[0])
	}
	return id, args[1:], nil
}

// Optional flag values; a flag that is never set leaves its pointer nil.

type stringValue struct{ v *string }

func (f *stringValue) Set(s string) error { f.v = &s; return nil }
func (f *stringValue) String() string {
	if f.v == nil {
		return ""
	}
	return *f.v
}

type idValue struct{ v *int64 }

func (f *idValue) Set(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id %q", s)
	}
	f.v = &id
	return nil
}

func (f *idValue) String() string {
	if f.v == nil {
		return ""
	}
	return strconv.FormatInt(*f.v, 10)
}

type moneyValue struct{ v *core.Money }

func (f *moneyValue) Set(s string) error {
	m, err := core.ParseMoney(s)
	if err != nil {
		return err
	}
	f.v = &m
	return nil
}

func (f *moneyValue) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

// dateValue accepts 2006-01-02 in the local zone or a full RFC 3339 time.
type dateValue struct{ v *time.Time }

func (f *dateValue) Set(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.ParseInLocation(time.DateOnly, s, time.Local)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: use AAAA-MM-DD", s)
	}
	f.v = &t
	return nil
}

func (f *dateValue) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.Format(time.DateOnly)
}

type typeValue struct{ v core.TransactionType }

func (f *typeValue) Set(s string) error {
	t, err := core.ParseTransactionType(s)
	if err != nil {
		return err
	}
	f.v = t
	return nil
}

func (f *typeValue) String() string { return string(f.v) }

type boolValue struct{ v *bool }

func (f *boolValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	f.v = &b
	return nil
}

func (f *boolValue) String() string {
	if f.v == nil {
		return ""
	}
	return strconv.FormatBool(*f.v)
}

func (f *boolValue) IsBoolFlag() bool { return true }
