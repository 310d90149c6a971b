package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/peterbourgon/ff"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/a-bouts/aim-server/alert"
	"github.com/a-bouts/aim-server/api"
	"github.com/a-bouts/aim-server/feed"
	"github.com/a-bouts/aim-server/geo"
	"github.com/a-bouts/aim-server/track"
)

func main() {

	fs := flag.NewFlagSet("aim-server", flag.ExitOnError)
	var (
		listen       = fs.String("listen", ":8888", "listen address")
		baseLat      = fs.Float64("base-lat", 0.0, "base latitude (degrees)")
		baseLon      = fs.Float64("base-lon", 0.0, "base longitude (degrees)")
		baseAlt      = fs.Float64("base-alt", 0.0, "base altitude (meters)")
		precision    = fs.Int("precision", geo.DefaultPrecision, "decimals on computed directions")
		feedURL      = fs.String("feed-url", "", "remote position feed url")
		feedInterval = fs.Uint64("feed-interval", 15, "feed poll interval (seconds)")
		maxRange     = fs.Float64("max-range", 0.0, "alert when the target is farther than this (meters, 0 disables)")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
		logFile      = fs.String("log-file", "", "rotate logs into this file")
		debug        = fs.Bool("debug", false, "debug logging")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile the direction handlers")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	configureLogging(*logFile, *debug)

	base := track.New(geo.NewPoint(*baseLat, *baseLon, *baseAlt), *precision)

	alerter := &alert.Alerter{
		Config: alert.Config{
			Host:     *xmppHost,
			Jid:      *xmppJid,
			Password: *xmppPassword,
			To:       *xmppTo,
		},
		MaxRange: *maxRange,
	}

	var s *api.Server
	var f *feed.Feed
	if *feedURL != "" {
		f = feed.New(*feedURL, func(remote geo.Point) {
			alerter.Notify(s.DirectionTo(remote))
		})
	}
	s = api.InitServer(*cpuprofile, base, f)

	if f != nil {
		log.Infof("Poll %s every %ds", *feedURL, *feedInterval)
		f.Start(*feedInterval)
	}

	log.Infof("Start server on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, s.Router()))
}

func configureLogging(logFile string, debug bool) {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: false})
	log.SetOutput(os.Stdout)

	if debug {
		log.SetLevel(log.DebugLevel)
	}

	if logFile == "" {
		return
	}

	logDir := filepath.Dir(logFile)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			log.Fatalf("create log directory: %v", err)
		}
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 10,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	log.AddHook(lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: writer,
		log.FatalLevel: writer,
		log.ErrorLevel: writer,
		log.WarnLevel:  writer,
		log.InfoLevel:  writer,
		log.DebugLevel: writer,
	}, fileFmt))
}
