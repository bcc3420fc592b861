// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command classdump is a minimal CLI built on top of the classfile
// package. It owns the two concerns the decoder itself stays out of
// (spec §1): acquiring the input bytes from the file system, and mapping
// a decode outcome to a process exit code. It does not render
// javap-style human-readable output; it prints the decoded model as
// indented JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/classkit/classfile"
)

var (
	all        bool
	constants  bool
	fields     bool
	methods    bool
	attributes bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON indent error:", err)
		return string(buf)
	}
	return pretty.String()
}

// readClassFile maps filename into memory rather than reading it into a
// heap-allocated []byte, mirroring the teacher's file-loading strategy
// for large binaries.
func readClassFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	closer := func() {
		m.Unmap()
		f.Close()
	}
	return m, closer, nil
}

func dump(filename string) int {
	data, closer, err := readClassFile(filename)
	if err != nil {
		log.Printf("error opening %s: %v", filename, err)
		return 1
	}
	defer closer()

	cf, err := classfile.Parse(data, nil)
	if err != nil {
		log.Printf("error decoding %s: %v", filename, err)
		return 1
	}

	if all || constants {
		b, _ := json.Marshal(cf.Pool)
		fmt.Println(prettyPrint(b))
	}
	if all || fields {
		b, _ := json.Marshal(cf.Fields)
		fmt.Println(prettyPrint(b))
	}
	if all || methods {
		b, _ := json.Marshal(cf.Methods)
		fmt.Println(prettyPrint(b))
	}
	if all || attributes {
		b, _ := json.Marshal(cf.Attributes)
		fmt.Println(prettyPrint(b))
	}
	if !all && !constants && !fields && !methods && !attributes {
		b, _ := json.Marshal(cf)
		fmt.Println(prettyPrint(b))
	}
	return 0
}

func main() {
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:   "classdump",
		Short: "A compiled class file decoder",
		Long:  "classdump decodes a compiled class file into its full constant pool, flags, fields, methods, and attribute tree, and prints the result as JSON.",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [file ...]",
		Short: "Decode and print one or more class files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, filename := range args {
				if rc := dump(filename); rc != 0 {
					exitCode = rc
				}
			}
		},
	}

	dumpCmd.Flags().BoolVarP(&all, "all", "a", false, "dump everything")
	dumpCmd.Flags().BoolVarP(&constants, "constants", "c", false, "dump the constant pool")
	dumpCmd.Flags().BoolVarP(&fields, "fields", "f", false, "dump the fields table")
	dumpCmd.Flags().BoolVarP(&methods, "methods", "m", false, "dump the methods table")
	dumpCmd.Flags().BoolVarP(&attributes, "attributes", "r", false, "dump the class-level attributes")

	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
