//go:build ignore

// ====================================================
// serves the web build
//
// usage :
// 	go run build.go web
// 	go run run_web.go
// ====================================================

package main

import (
	"flag"
	"fmt"
	"math"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"flowgradient/misc"
)

var (
	TargetFolder string
	Port         uint
	LogRequests  bool
)

func init() {
	flag.StringVar(&TargetFolder, "folder", "./web_build", "folder to serve")
	flag.UintVar(&Port, "port", 6969, "port")
	flag.BoolVar(&LogRequests, "log", false, "log every request")
}

func main() {
	flag.Parse()

	if Port > math.MaxUint16 {
		misc.ErrLogger.Printf("port %v is bigger than max port value", Port)
		os.Exit(1)
	}

	if !filepath.IsLocal(TargetFolder) {
		misc.ErrLogger.Printf("%s is not a local folder", TargetFolder)
		os.Exit(1)
	}

	wasm := filepath.Join(TargetFolder, "flowgradient.wasm")
	if exists, err := misc.CheckFileExists(wasm); err != nil {
		misc.ErrLogger.Printf("could not check %s: %v", wasm, err)
		os.Exit(1)
	} else if !exists {
		misc.WarnLogger.Printf("%s doesn't exist, run \"go run build.go web\" first", wasm)
	}

	// some systems don't know about wasm and instantiateStreaming refuses
	// anything else
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		misc.WarnLogger.Printf("failed to register wasm mime type: %v", err)
	}

	misc.InfoLogger.Printf("serving %s", TargetFolder)
	misc.InfoLogger.Printf("listening to http://localhost:%v", Port)

	var handler http.Handler = NoCache(http.FileServer(http.Dir(TargetFolder)))
	if LogRequests {
		handler = LogRequest(handler)
	}

	if err := http.ListenAndServe(fmt.Sprintf(":%v", Port), handler); err != nil {
		misc.ErrLogger.Fatal(err)
	}
}

var epoch = time.Unix(0, 0).Format(time.RFC1123)

var noCacheHeaders = map[string]string{
	"Expires":         epoch,
	"Cache-Control":   "no-cache, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}

var etagHeaders = []string{
	"ETag",
	"If-Modified-Since",
	"If-Match",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
}

// NoCache makes browsers fetch every file again so a rebuild shows up on
// reload.
func NoCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, v := range etagHeaders {
			r.Header.Del(v)
		}
		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

func LogRequest(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		misc.InfoLogger.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
