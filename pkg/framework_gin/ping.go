package framework_gin

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// ================================================================================================
// ping
// ================================================================================================
// https://quarkus.io/guides/smallrye-health
// the calculator has no dependencies, so live and ready are the same thing
func AddPing(router gin.IRouter, buildNumber string) {
	startTime := time.Now()
	router.GET("/ping", func(c *gin.Context) {
		resp := gin.H{
			"service":      "ok",
			"build-number": buildNumber,
			"live":         "ok",
			"ready":        "ok",
			"uptime":       time.Since(startTime).String(),
		}

		if c.Query("memory") == "true" {
			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			resp["memory"] = mem
		}

		if c.Query("extra") == "true" {
			hostname, _ := os.Hostname()
			resp["gin-version"] = gin.Version
			resp["go-version"] = runtime.Version()
			resp["numGoRoutines"] = runtime.NumGoroutine()
			resp["numCPU"] = runtime.NumCPU()
			resp["GOOS"] = runtime.GOOS
			resp["GOARCH"] = runtime.GOARCH
			resp["hostname"] = hostname
			if info, ok := debug.ReadBuildInfo(); ok {
				resp["module"] = info.Main.Path + "@" + info.Main.Version
			}
		}

		c.JSON(http.StatusOK, resp)
	})
}
