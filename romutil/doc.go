// Package romutil identifies, validates and transforms Amiga Kickstart ROM
// images on top of the kickstart and romdb packages.
//
// # Overview
//
// A Parser runs the identification pipeline over an image and returns a
// ROM: an owned copy of the plain image plus an Info snapshot holding
// every validation and classification result.
//
//	p := romutil.New(romutil.WithKey(key))
//	rom, err := p.Parse(data)
//	if err != nil {
//	    log.Fatal(err) // empty, invalid size or missing key
//	}
//	defer rom.Release()
//
//	info := rom.Info()
//	fmt.Println(info.Name, info.ChecksumValid)
//
// # Transforms
//
// Transforms work on the ROM buffer. After one has changed the image,
// Stale reports true and the snapshot describes the old bytes until
// Reparse is called:
//
//	if _, err := rom.Swap(kickstart.SwapOptions{ToChip: true}); err != nil {
//	    return err
//	}
//	if _, err := rom.CorrectChecksum(); err != nil {
//	    return err
//	}
//	if err := rom.Reparse(); err != nil {
//	    return err
//	}
//
// # File Jobs
//
// Info, SplitFile, MergeFile, SwapFile, CryptFile and ChecksumFile run a
// complete operation between files, reading and writing through a
// romio.Store:
//
//	p := romutil.New(romutil.WithLogger(myLogger))
//	err := p.SplitFile("kick.rom", "kick_a.rom", "kick_b.rom", romutil.JobOptions{
//	    Swap:            kickstart.SwapOptions{ToChip: true},
//	    CorrectChecksum: true,
//	})
//
// # Pipeline Stages
//
// Observe the pipeline with a stage callback:
//
//	p := romutil.New(romutil.WithStageCallback(func(s romutil.Stage) {
//	    fmt.Println("stage:", s)
//	}))
//
// # Logging
//
// Library code is silent unless a Logger is configured. Jobs log advisory
// findings (unknown ROM, invalid checksum) at Info level.
package romutil
