package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/pricy-xyz/goauction/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before flushing to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// ddClientsIdx is used for accessing ddClients by round robin scheduling
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

func initDDClient() {
	host := viper.GetString("datadog_host")
	port := viper.GetInt("datadog_port")
	if port == 0 {
		port = 8125
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	ddClients = make([]statsCli, ddClientsSize)
	for i := 0; i < ddClientsSize; i++ {
		// one buffered connection per slot so concurrent bumps don't contend
		log.Log().WithFields(log.Fields{"addr": addr, "idx": i}).Info("connecting to datadog agent")
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = cli
	}
}

func nextClient() statsCli {
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}

// DDMetrics wraps datadog statsd clients
type DDMetrics struct {
	ddTags []string
}

// BumpAvg bumps the average for the given key.
func (dm *DDMetrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	// datadog has no plain average; a histogram covers it
	if err := nextClient().Histogram(key, val, dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("histogram bump failed")
	}
}

// BumpSum bumps the sum for the given key.
func (dm *DDMetrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := nextClient().Count(key, int64(val), dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("count bump failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (dm *DDMetrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := nextClient().Histogram(key, val, dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("histogram bump failed")
	}
}

// BumpTimeInMs records a duration in milliseconds for the given key.
func (dm *DDMetrics) BumpTimeInMs(key string, ms float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := nextClient().TimeInMilliseconds(key, ms, dm.mergeTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "err": err}).Warn("timing bump failed")
	}
}

// mergeTags combines base tags with per-call "k", "v" pairs into datadog "k:v" form
func (dm *DDMetrics) mergeTags(kvs []string) []string {
	tags := make([]string, 0, len(dm.ddTags)+len(kvs)/2)
	tags = append(tags, dm.ddTags...)
	for i := 0; i+1 < len(kvs); i += 2 {
		tags = append(tags, kvs[i]+":"+kvs[i+1])
	}
	return tags
}
