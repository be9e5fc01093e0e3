package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/njchilds90/gosigma"
)

const (
	maxBodyBytes    = 1 << 20 // 1 MiB
	requestIDHeader = "X-Request-ID"
)

func newRouter(ring *gosigma.Ring) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), requestID(), recoverPanics())

	router.POST("/tool", toolHandler(ring))

	router.GET("/schema", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(gosigma.MCPToolSpec()))
	})

	router.GET("/ring", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"degree": ring.Degree(), "symbols": ring.Symbols()})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	return router
}

// requestID tags every request with an id, reusing the caller's when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// recoverPanics turns a panic, including a broken symmetry invariant in the
// multiplication, into a 500 and logs it with its stack.
func recoverPanics() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in %s [%s]: %v\n%s", c.FullPath(), c.GetString("request_id"), rec, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

func toolHandler(ring *gosigma.Ring) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(c.Request.Body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		dec := json.NewDecoder(&buf)
		dec.DisallowUnknownFields()

		var req gosigma.ToolRequest
		if err := dec.Decode(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: trailing data"})
			return
		}

		start := time.Now()
		resp := gosigma.HandleToolCall(ring, req)
		if resp.Error != "" {
			log.Printf("tool %s [%s]: %s", req.Tool, c.GetString("request_id"), resp.Error)
		}
		c.Header("X-Elapsed", fmt.Sprint(time.Since(start)))
		c.JSON(http.StatusOK, resp)
	}
}
