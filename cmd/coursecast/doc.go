// Command coursecast is the CLI for the study material conversion
// pipeline. It uploads source files, queues conversion jobs, runs the
// worker loop, and inspects job state.
package main
