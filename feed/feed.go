package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/aim-server/geo"
)

// Fix is one remote position report, in the units the source speaks:
// degrees for lat and lon, meters for alt.
type Fix struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt"`
}

// Observer is called after every new fix.
type Observer func(remote geo.Point)

// Feed polls a position source url and keeps the latest fix.
type Feed struct {
	url      string
	client   *http.Client
	observer Observer

	lock   sync.RWMutex
	remote geo.Point
	ok     bool
}

func New(url string, observer Observer) *Feed {
	return &Feed{
		url:      url,
		client:   &http.Client{Timeout: 10 * time.Second},
		observer: observer,
	}
}

// Start polls every interval seconds on a gocron scheduler.
func (f *Feed) Start(interval uint64) {
	s := gocron.NewScheduler()
	job := s.Every(interval).Seconds()
	job.Do(f.refresh)

	go s.Start()
}

func (f *Feed) refresh() {
	if err := f.Poll(); err != nil {
		log.Errorf("Poll %s : %v", f.url, err)
	}
}

// Poll fetches one fix from the source.
func (f *Feed) Poll() error {
	resp, err := f.client.Get(f.url)
	if err != nil {
		return fmt.Errorf("get %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %s", f.url, resp.Status)
	}

	var fix Fix
	if err := json.NewDecoder(resp.Body).Decode(&fix); err != nil {
		return fmt.Errorf("decode fix: %w", err)
	}

	remote := geo.NewPoint(fix.Lat, fix.Lon, fix.Alt)

	f.lock.Lock()
	f.remote = remote
	f.ok = true
	f.lock.Unlock()

	log.Debugf("Fix (%.6f,%.6f) alt %.1f", fix.Lat, fix.Lon, fix.Alt)

	if f.observer != nil {
		f.observer(remote)
	}

	return nil
}

// Remote returns the latest fix. ok is false until the first
// successful poll.
func (f *Feed) Remote() (geo.Point, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	return f.remote, f.ok
}
