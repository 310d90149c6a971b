package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/aim-server/api/model"
	"github.com/a-bouts/aim-server/feed"
	"github.com/a-bouts/aim-server/geo"
	"github.com/a-bouts/aim-server/track"
)

type Server struct {
	cpuprofile bool
	base       *track.Location
	feed       *feed.Feed
	lock       sync.Mutex
}

func InitServer(cpuprofile bool, base *track.Location, f *feed.Feed) *Server {
	return &Server{
		cpuprofile: cpuprofile,
		base:       base,
		feed:       f,
	}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	api := router.PathPrefix("/aim").Subrouter()

	api.HandleFunc("/-/healthz", s.healthz).Methods(http.MethodGet)
	api.HandleFunc("/direction", s.direction).Methods("POST")
	api.HandleFunc("/base", s.getBase).Methods("GET")
	api.HandleFunc("/base", s.putBase).Methods("PUT")
	api.HandleFunc("/base", s.patchBase).Methods("PATCH")
	api.HandleFunc("/target", s.target).Methods("POST")
	api.HandleFunc("/track", s.track).Methods("GET")

	// the map UI is served from somewhere else
	return handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
}

// DirectionTo computes the direction from the held base to remote,
// serialized against the base mutation handlers.
func (s *Server) DirectionTo(remote geo.Point) geo.Direction {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.base.Direction(remote)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *Server) direction(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	requestLogger := s.requestLogger(req, "direction")

	var d model.Direction
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	precision := geo.DefaultPrecision
	if d.Precision != nil {
		precision = *d.Precision
	}

	res := geo.Calculate(point(d.Base), point(d.Remote), precision)

	requestLogger.Infof("Direction (%.6f,%.6f) -> (%.6f,%.6f) : %.2f° %.2f° %.2f m",
		d.Base.Lat, d.Base.Lon, d.Remote.Lat, d.Remote.Lon, res.Bearing, res.Elevation, res.Distance)

	json.NewEncoder(w).Encode(res)
}

func (s *Server) getBase(w http.ResponseWriter, req *http.Request) {
	s.lock.Lock()
	p := s.base.Point()
	s.lock.Unlock()

	json.NewEncoder(w).Encode(position(p))
}

func (s *Server) putBase(w http.ResponseWriter, req *http.Request) {
	requestLogger := s.requestLogger(req, "base")

	var p model.Position
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.lock.Lock()
	s.base.Set(point(p))
	np := s.base.Point()
	s.lock.Unlock()

	requestLogger.Infof("Base (%.6f,%.6f) alt %.1f", p.Lat, p.Lon, p.Alt)

	json.NewEncoder(w).Encode(position(np))
}

// patchBase routes partial updates through track.Update. Clients
// speak degrees, the Location stores radians: the conversion happens
// here, at the boundary.
func (s *Server) patchBase(w http.ResponseWriter, req *http.Request) {
	requestLogger := s.requestLogger(req, "base")

	var p model.BasePatch
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var u track.Update
	if p.Lat != nil {
		lat := geo.Radians(*p.Lat)
		u.Lat = &lat
	}
	if p.Lon != nil {
		lon := geo.Radians(*p.Lon)
		u.Lon = &lon
	}
	u.Alt = p.Alt

	s.lock.Lock()
	err := s.base.Update(u)
	np := s.base.Point()
	s.lock.Unlock()

	if err != nil {
		requestLogger.Warnf("Base update rejected : %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	requestLogger.Infof("Base patched (%.6f,%.6f) alt %.1f", geo.Degrees(np.Lat), geo.Degrees(np.Lon), np.Alt)

	json.NewEncoder(w).Encode(position(np))
}

func (s *Server) target(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	requestLogger := s.requestLogger(req, "target")

	var t model.Target
	if err := json.NewDecoder(req.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	remote := point(t.Remote)

	var res geo.Direction
	if t.Precision != nil {
		s.lock.Lock()
		res = geo.Calculate(s.base.Point(), remote, *t.Precision)
		s.lock.Unlock()
	} else {
		res = s.DirectionTo(remote)
	}

	requestLogger.Infof("Target (%.6f,%.6f) : %.2f° %.2f° %.2f m",
		t.Remote.Lat, t.Remote.Lon, res.Bearing, res.Elevation, res.Distance)

	json.NewEncoder(w).Encode(res)
}

func (s *Server) track(w http.ResponseWriter, req *http.Request) {
	if s.feed == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	remote, ok := s.feed.Remote()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(s.DirectionTo(remote))
}

func (s *Server) requestLogger(req *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func point(p model.Position) geo.Point {
	return geo.NewPoint(p.Lat, p.Lon, p.Alt)
}

func position(p geo.Point) model.Position {
	return model.Position{Lat: geo.Degrees(p.Lat), Lon: geo.Degrees(p.Lon), Alt: p.Alt}
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	return "", errors.New("no valid ip found")
}
