package fixture

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"robocompany/common"
	"robocompany/errdefs"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var serverStart = time.Now()

// LoadRobotsDocument reads a robots document and checks that the app would accept it
func LoadRobotsDocument(path string) ([]byte, error) {
	document, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read robots document %s", path)
	}

	var robots []common.Robot
	err = json.Unmarshal(document, &robots)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid robots document %s", path)
	}

	if robots == nil {
		return nil, errors.Wrapf(errdefs.ErrFailedToParse, "robots document %s is null", path)
	}

	return document, nil
}

// NewRouter serves the document with the same path layout as a gist, so a
// base URL of http://host/<owner>/<gist>/ or http://host/ both work.
func NewRouter(document []byte) *mux.Router {
	serveDocument := func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Str("path", r.URL.Path).Str("remote", r.RemoteAddr).Msg("serving robots document")

		w.Header().Set("Content-Type", "application/json")
		http.ServeContent(w, r, common.RobotsResource, serverStart, bytes.NewReader(document))
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/"+common.RobotsResource, serveDocument).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/{owner}/{gist}/"+common.RobotsResource, serveDocument).Methods(http.MethodGet, http.MethodHead)

	return r
}
