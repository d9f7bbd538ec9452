package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gangacalc-cli",
		Short: "GangaCalc CLI tool",
		Long:  `A command line interface for interacting with the GangaCalc daily ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GangaCalc API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (when api auth is enabled)")

	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Day operations",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the selected day's ledger and totals",
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodGet, "/api/v1/day/", nil)
		},
	}

	selectCmd := &cobra.Command{
		Use:   "select [date]",
		Short: "Select the working day (YYYY-MM-DD; future dates clamp to today)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodPost, "/api/v1/day/select", map[string]string{"date": args[0]})
		},
	}

	openingBalanceCmd := &cobra.Command{
		Use:   "opening-balance [value]",
		Short: "Set the opening cash balance for the selected day",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				fmt.Printf("Invalid amount: %v\n", err)
				os.Exit(1)
			}
			request(http.MethodPut, "/api/v1/day/opening-balance", map[string]float64{"value": value})
		},
	}

	finalizeCmd := &cobra.Command{
		Use:   "finalize",
		Short: "Reconcile and close the selected day",
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodPost, "/api/v1/day/finalize", nil)
		},
	}

	dayCmd.AddCommand(showCmd, selectCmd, openingBalanceCmd, finalizeCmd)
	rootCmd.AddCommand(dayCmd)

	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Show storage recovery status",
		Run: func(cmd *cobra.Command, args []string) {
			request(http.MethodGet, "/api/v1/state", nil)
		},
	}
	rootCmd.AddCommand(stateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func request(method, path string, payload any) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	fmt.Println(prettyJSON(raw))

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusConflict {
		fmt.Printf("Request failed (Status: %d)\n", resp.StatusCode)
		os.Exit(1)
	}
}

// prettyJSON re-indents a response body, falling back to the raw text
// when it is not valid JSON.
func prettyJSON(raw []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return string(raw)
	}
	return pretty.String()
}
