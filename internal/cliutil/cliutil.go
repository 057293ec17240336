// internal/cliutil/cliutil.go
package cliutil

import "strings"

// flagName returns the name of a flag-like argument ("-x", "--x", "--x=y"),
// or "" for values, "-" and "--".
func flagName(arg string) string {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return ""
	}
	name := strings.TrimLeft(arg, "-")
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		name = name[:eq]
	}
	return name
}

// ExpandMultiValued rewrites "--name a b c" as "--name a --name b --name c"
// for every flag named in multi, so a std FlagSet can parse it as a
// repeatable flag. Values run until the next flag-like argument or "--".
// "--name=a b" is treated the same way. Everything else is left untouched.
func ExpandMultiValued(argv []string, multi map[string]bool) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			out = append(out, argv[i:]...)
			break
		}
		name := flagName(arg)
		if name == "" || !multi[name] {
			out = append(out, arg)
			continue
		}
		n := 0
		if strings.Contains(arg, "=") {
			out = append(out, arg)
			n++
		}
		for i+1 < len(argv) && argv[i+1] != "--" && flagName(argv[i+1]) == "" {
			i++
			out = append(out, "--"+name, argv[i])
			n++
		}
		if n == 0 {
			// no value: leave the bare flag for Parse to report
			out = append(out, arg)
		}
	}
	return out
}
