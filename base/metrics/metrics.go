/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/starknet-id/goapi/base/env"
	"github.com/starknet-id/goapi/base/log"
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

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to the statsd agent
	bufferMetrics = 10
)

var (
	initOnce sync.Once
	ddClient *statsd.Client
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		log.Log().Info("datadog_host not set, metrics are dropped")
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	client, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("failed to connect datadog agent")
		return
	}
	client.Tags = append(client.Tags,
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"pod:"+env.PodName(),
		"env:"+viper.GetString("env_name"),
		"app:"+viper.GetString("app_name"),
	)
	ddClient = client
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	initOnce.Do(initDDClient)
	return &Metrics{pkgName: pkgName}
}

// Metrics dispatches bumps to the shared statsd client.
type Metrics struct {
	pkgName string
}

func joinTags(tags []string) []string {
	// statsd wants "k:v" entries, bumps take alternating key, value
	out := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		out = append(out, tags[i]+":"+tags[i+1])
	}
	return out
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	if ddClient == nil {
		return
	}
	ddClient.Gauge(mt.pkgName+`.`+key, val, joinTags(tags), ddRate)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if ddClient == nil {
		return
	}
	ddClient.Count(mt.pkgName+`.`+key, int64(val), joinTags(tags), ddRate)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if ddClient == nil {
		return
	}
	ddClient.Histogram(mt.pkgName+`.`+key, val, joinTags(tags), ddRate)
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. Calling it starts the timer, and it returns a value on which End()
// can be called to indicate finishing the timer. A convenient way of
// recording the duration of a function is calling it like such at the top of
// the function:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		key:   mt.pkgName + `.` + key,
		tags:  joinTags(tags),
		start: time.Now(),
	}
}

type timeTracker struct {
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	if ddClient == nil {
		return
	}
	ddClient.TimeInMilliseconds(t.key, float64(time.Since(t.start))/float64(time.Millisecond), t.tags, ddRate)
}
