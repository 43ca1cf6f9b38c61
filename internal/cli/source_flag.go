package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// sourceFlag collects repeated --source Subject=URL values.
type sourceFlag map[string][]string

var _ pflag.Value = sourceFlag(nil)

func (f sourceFlag) String() string {
	subjects := make([]string, 0, len(f))
	for s := range f {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	parts := make([]string, 0, len(f))
	for _, s := range subjects {
		for _, u := range f[s] {
			parts = append(parts, s+"="+u)
		}
	}
	return strings.Join(parts, ",")
}

func (f sourceFlag) Set(v string) error {
	subject, url, ok := strings.Cut(v, "=")
	subject, url = strings.TrimSpace(subject), strings.TrimSpace(url)
	if !ok || subject == "" || url == "" {
		return fmt.Errorf("expected Subject=URL, got %q", v)
	}
	f[subject] = append(f[subject], url)
	return nil
}

func (f sourceFlag) Type() string { return "subject=url" }

// mergeSources combines source maps, keeping order and dropping repeats.
func mergeSources(maps ...map[string][]string) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[string]bool)
	for _, m := range maps {
		for subject, urls := range m {
			for _, u := range urls {
				key := subject + "\x00" + u
				if seen[key] {
					continue
				}
				seen[key] = true
				out[subject] = append(out[subject], u)
			}
		}
	}
	return out
}
