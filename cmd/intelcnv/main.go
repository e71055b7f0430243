// Copyright (c) 2018 PT Defender Nusa Semesta and contributors, All rights reserved.
//
// This file is part of Intelcnv.
//
// Intelcnv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation version 3 of the License.
//
// Intelcnv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Intelcnv. If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/defenxor/intelcnv/internal/pkg/intelcnv"
	log "github.com/defenxor/intelcnv/internal/pkg/shared/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	progName = "intelcnv"
)

var version string
var buildTime string

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("source", "s", "", "source spreadsheet file to convert")
	convertCmd.Flags().Bool("splunk", false, "only produce the Splunk CSV table")
	convertCmd.Flags().Bool("hx", false, "only produce the HX chunk files")
	convertCmd.Flags().StringP("out", "o", intelcnv.DefaultTableOut, "Splunk table output file, must end in .csv")
	convertCmd.Flags().StringP("dir", "d", intelcnv.DefaultChunkDir, "HX chunk output directory")
	convertCmd.Flags().IntP("size", "m", intelcnv.DefaultChunkSize, "max indicators per HX chunk file")
	convertCmd.Flags().BoolP("quiet", "q", false, "suppress progress messages")
	convertCmd.Flags().BoolP("count", "n", false, "reserved for future use")
	convertCmd.Flags().Bool("debug", false, "enable debug messages for troubleshooting")

	viper.BindPFlag("source", convertCmd.Flags().Lookup("source"))
	viper.BindPFlag("splunk", convertCmd.Flags().Lookup("splunk"))
	viper.BindPFlag("hx", convertCmd.Flags().Lookup("hx"))
	viper.BindPFlag("out", convertCmd.Flags().Lookup("out"))
	viper.BindPFlag("dir", convertCmd.Flags().Lookup("dir"))
	viper.BindPFlag("size", convertCmd.Flags().Lookup("size"))
	viper.BindPFlag("quiet", convertCmd.Flags().Lookup("quiet"))
	viper.BindPFlag("count", convertCmd.Flags().Lookup("count"))
	viper.BindPFlag("debug", convertCmd.Flags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix(progName)
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exit("Error returned from command", err)
	}
}

func exit(msg string, err error) {
	fmt.Println("Exiting: " + msg + ": " + err.Error())
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "intelcnv",
	Short: "Threat intel indicator converter",
	Long: `
Intelcnv reads a spreadsheet of threat intel indicators and re-emits them as
a Splunk lookup CSV and as chunked plain-text lists for HX.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Long:  `Print the version and build date information`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version, buildTime)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an indicator spreadsheet to Splunk and HX outputs",
	Long: `
Convert an indicator spreadsheet to a Splunk lookup CSV and chunked HX text
files. Both outputs are produced unless --splunk or --hx narrows the run.`,
	Run: func(cmd *cobra.Command, args []string) {
		source := viper.GetString("source")
		size := viper.GetInt("size")

		if source == "" {
			exit("source file must be defined", errors.New("missing source parameter"))
		}
		if size < 1 {
			exit("size must be greater than 0", errors.New("wrong size"))
		}

		if err := log.Setup(viper.GetBool("debug")); err != nil {
			exit("Cannot setup logger", err)
		}

		res, err := intelcnv.Convert(intelcnv.Options{
			Source:       source,
			TableOut:     viper.GetString("out"),
			ChunkDir:     viper.GetString("dir"),
			TableOnly:    viper.GetBool("splunk"),
			ChunkOnly:    viper.GetBool("hx"),
			Quiet:        viper.GetBool("quiet"),
			MaxChunkSize: size,
		})
		if err != nil {
			exit("Cannot convert "+source, err)
		}
		if !viper.GetBool("quiet") {
			fmt.Println("Done.", res.TotalProcessed, "unique indicators processed.")
		}
	},
}
