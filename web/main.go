package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()
	defer glog.Flush()

	glog.CopyStandardLogTo("INFO")

	webServer := server.NewServer(*port)

	glog.Infof("Whitted Raytracer Web Server")
	glog.Infof("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		glog.Fatalf("Error starting server: %v", err)
	}
}
