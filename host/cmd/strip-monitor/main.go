// strip-monitor tails the firmware's debug output over USB CDC. The
// firmware prints one line per pattern switch plus bring-up status;
// timestamps are added host-side since the Pico has no wall clock.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/segfault88/pico-display/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s (Ctrl-C to exit)\n", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05.000"), scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read: %v\n", err)
		os.Exit(1)
	}
}
