package alert

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/aim-server/geo"
)

// Config for the xmpp notifier.
type Config struct {
	Host     string
	Jid      string
	Password string
	To       string
}

// Alerter sends one xmpp message when the tracked target moves
// farther than MaxRange meters from the base, then stays quiet until
// the target comes back inside. MaxRange 0 disables it. Notify is
// only ever called from the feed scheduler goroutine, so the latch
// needs no lock.
type Alerter struct {
	Config   Config
	MaxRange float64

	outside bool
}

func (a *Alerter) Notify(d geo.Direction) {
	if a.MaxRange <= 0 {
		return
	}

	if d.Distance <= a.MaxRange {
		a.outside = false
		return
	}

	if a.outside {
		return
	}
	a.outside = true

	message := fmt.Sprintf("target out of range : %.0f m at bearing %.1f°", d.Distance, d.Bearing)
	if err := a.Send(message); err != nil {
		log.Errorf("Send alert : %v", err)
	}
}

func serverName(jid string) string {
	return strings.Split(jid, "@")[1]
}

func (a *Alerter) Send(message string) error {
	if len(a.Config.Jid) == 0 || len(a.Config.Password) == 0 || len(a.Config.To) == 0 {
		return errors.New("missing xmpp config")
	}

	host := a.Config.Host
	if len(host) == 0 {
		host = serverName(a.Config.Jid)
	}

	xmpp.DefaultConfig = tls.Config{
		InsecureSkipVerify: true,
	}

	options := xmpp.Options{
		Host:     host,
		User:     a.Config.Jid,
		Password: a.Config.Password,
		NoTLS:    true,
		StartTLS: true,
		Debug:    false,
		Session:  false,
		Status:   "xa",
	}

	talk, err := options.NewClient()
	if err != nil {
		return err
	}
	defer talk.Close()

	_, err = talk.Send(xmpp.Chat{Remote: a.Config.To, Type: "chat", Text: message})

	return err
}
