// Command queuectl is the operator client for the arcade play queue. It
// renders each cabinet's current session and waiting queue and issues
// queue mutations against the server's REST API.
package main
