// main.go - demo entry point driving a pokey.Core with synthetic register
// writes, adapted from the reference engine's boilerplate main().

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/intuitionamiga/pokeycore"
)

func boilerPlate() {
	fmt.Println("pokeydemo - a standalone driver for the pokeycore library")
	fmt.Println("Plays a fixed tone sequence through POKEY channel 1.")
}

func main() {
	boilerPlate()

	core, err := pokey.NewCore(pokey.Config{})
	if err != nil {
		fmt.Printf("failed to initialize POKEY core: %v\n", err)
		os.Exit(1)
	}

	backend, err := pokey.NewOtoBackend(pokey.DefaultSampleRateHz)
	if err != nil {
		fmt.Printf("audio device unavailable, running silently: %v\n", err)
	} else {
		backend.Attach(core)
		backend.Start()
		defer backend.Close()
	}

	var cycle uint64

	// SKCTL=3 takes the chip out of reset; AUDCTL=0 selects the 64kHz
	// base clock for every channel.
	core.WriteRegister(cycle, pokey.RegSKCTL, 3)
	core.WriteRegister(cycle, pokey.RegAUDCTL, 0)

	notes := []struct {
		audf uint8
		audc uint8
		ms   int
	}{
		{126, 0xA8, 400}, // pure tone, volume 8
		{84, 0xA8, 400},
		{63, 0xA8, 400},
		{0, 0x00, 200}, // silence
	}

	cyclesPerMs := uint64(pokey.DefaultCPUClockHz) / 1000

	for _, n := range notes {
		core.WriteRegister(cycle, pokey.RegAUDF1, n.audf)
		core.WriteRegister(cycle, pokey.RegAUDC1, n.audc)

		end := cycle + uint64(n.ms)*cyclesPerMs
		for cycle < end {
			step := cyclesPerMs
			if cycle+step > end {
				step = end - cycle
			}
			cycle += step
			core.Sync(cycle)

			throttleDeadline := time.Now().Add(250 * time.Millisecond)
			for core.ShouldThrottle() && time.Now().Before(throttleDeadline) {
				time.Sleep(time.Millisecond)
			}
		}
	}

	time.Sleep(200 * time.Millisecond)
}
