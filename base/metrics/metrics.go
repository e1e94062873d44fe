/*Package metrics wraps datadog-go to facilitate metric recording
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
	"time"

	"github.com/pricy-xyz/goauction/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	tags := []string{
		"env:" + orNA(env.EnvName()),
		"app:" + orNA(env.AppName()),
		"pod:" + orNA(env.PodName()),
	}
	return &client{
		pfx:    strings.TrimSuffix(pkgName, ".") + ".",
		dd:     &DDMetrics{ddTags: tags},
		ddTags: tags,
	}
}

func orNA(s string) string {
	if s == "" {
		return TagValueNA
	}
	return s
}

type client struct {
	pfx    string
	dd     *DDMetrics
	ddTags []string
}

func (c *client) BumpAvg(key string, val float64, tags ...string) {
	c.dd.BumpAvg(c.pfx+key, val, tags...)
}

func (c *client) BumpSum(key string, val float64, tags ...string) {
	c.dd.BumpSum(c.pfx+key, val, tags...)
}

func (c *client) BumpHistogram(key string, val float64, tags ...string) {
	c.dd.BumpHistogram(c.pfx+key, val, tags...)
}

func (c *client) BumpTime(key string, tags ...string) Ender {
	return &ender{
		start: time.Now(),
		key:   c.pfx + key,
		tags:  tags,
		dd:    c.dd,
	}
}

type ender struct {
	start time.Time
	key   string
	tags  []string
	dd    *DDMetrics
}

func (e *ender) End() {
	e.dd.BumpTimeInMs(e.key, float64(time.Since(e.start).Milliseconds()), e.tags...)
}
