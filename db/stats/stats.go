// Package stats submits usage metrics to InfluxDB once a minute.
// All methods are safe to call on a nil *Client, so metrics can simply be
// left unconfigured.
package stats

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kestrel-sys/danktracker/common"
)

// Client is an InfluxDB client.
type Client struct {
	Client api.WriteAPI

	queriesMu sync.Mutex
	queries   uint32

	cmdsMu sync.Mutex
	cmds   uint32

	eventsMu sync.Mutex
	events   map[string]uint32
}

// New creates a new client and starts its submit loop.
func New(url, token, organization, database string) *Client {
	c := &Client{
		events: make(map[string]uint32),
	}

	c.Client = influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetBatchSize(20)).WriteAPI(organization, database)

	go c.submit()

	return c
}

// RegisterEvent counts one tracked event (share, gift, dropped).
func (c *Client) RegisterEvent(name string) {
	if c == nil {
		return
	}

	c.eventsMu.Lock()
	c.events[name]++
	c.eventsMu.Unlock()
}

// IncQuery increments the store query count by one.
func (c *Client) IncQuery() {
	if c == nil {
		return
	}

	c.queriesMu.Lock()
	c.queries++
	c.queriesMu.Unlock()
}

// IncCommand increments the command count by one.
func (c *Client) IncCommand() {
	if c == nil {
		return
	}

	c.cmdsMu.Lock()
	c.cmds++
	c.cmdsMu.Unlock()
}

func (c *Client) submit() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(time.Minute)

	for {
		select {
		case <-ticker.C:
			go c.submitInner()
		case <-ctx.Done():
			ticker.Stop()
			c.Client.Flush()
			return
		}
	}
}

func (c *Client) submitInner() {
	common.Log.Debug("Submitting metrics to InfluxDB")

	var cmds, queries, totalEvents uint32

	c.queriesMu.Lock()
	queries = c.queries
	c.queries = 0
	c.queriesMu.Unlock()

	c.cmdsMu.Lock()
	cmds = c.cmds
	c.cmds = 0
	c.cmdsMu.Unlock()

	c.eventsMu.Lock()
	im := make(map[string]interface{}, len(c.events))
	for k, v := range c.events {
		totalEvents += v
		im[k] = v
		c.events[k] = 0
	}
	c.eventsMu.Unlock()

	c.Client.WritePoint(influxdb2.NewPoint("events", nil, im, time.Now()))

	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)

	data := map[string]interface{}{
		"queries":     queries,
		"events":      totalEvents,
		"commands":    cmds,
		"alloc":       memStats.Alloc,
		"sys":         memStats.Sys,
		"total_alloc": memStats.TotalAlloc,
		"goroutines":  runtime.NumGoroutine(),
	}

	sysMem, err := mem.VirtualMemory()
	if err != nil {
		common.Log.Errorf("Error getting system memory: %v", err)
	} else {
		data["total_sys"] = sysMem.Used
		data["total_sys_percent"] = sysMem.UsedPercent
	}

	sysCPU, err := cpu.Percent(0, false)
	if err != nil {
		common.Log.Errorf("Error getting cpu usage: %v", err)
	} else if len(sysCPU) > 0 {
		data["cpu_percent"] = sysCPU[0]
	}

	c.Client.WritePoint(influxdb2.NewPoint("usage", nil, data, time.Now()))
}
