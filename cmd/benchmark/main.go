package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

type paraphraseRequest struct {
	Text string `json:"text"`
}

type paraphraseResponse struct {
	Original    string `json:"original"`
	Paraphrased string `json:"paraphrased"`
	Error       string `json:"error"`
}

type result struct {
	Sample   string `json:"sample"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Error    string `json:"error,omitempty"`
}

func main() {
	url := flag.String("url", "http://localhost:8000", "API base URL")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	model := discoverModel(client, baseURL)

	if *quality {
		runQualityMode(client, baseURL, model)
		return
	}

	fmt.Printf("Benchmarking against %s using model: %s (%d runs per sample", baseURL, model, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.WallMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.WallMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, model); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func discoverModel(client *http.Client, baseURL string) string {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching health: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Health endpoint returned %d: %s\n", resp.StatusCode, body)
		os.Exit(1)
	}

	var h healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding health: %v\n", err)
		os.Exit(1)
	}
	return h.Model
}

// paraphrase posts text and returns the decoded response. A 200 response
// carrying an error field is reported as an error.
func paraphrase(client *http.Client, baseURL, text string) (paraphraseResponse, error) {
	payload, _ := json.Marshal(paraphraseRequest{Text: text})

	resp, err := client.Post(baseURL+"/paraphrase", "application/json", strings.NewReader(string(payload)))
	if err != nil {
		return paraphraseResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return paraphraseResponse{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr paraphraseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return paraphraseResponse{}, err
	}
	if pr.Error != "" {
		return paraphraseResponse{}, fmt.Errorf("%s", pr.Error)
	}
	return pr, nil
}

func benchmark(client *http.Client, baseURL string, sample Sample, run int) result {
	start := time.Now()
	pr, err := paraphrase(client, baseURL, sample.Text)
	wallMs := time.Since(start).Milliseconds()

	r := result{Sample: sample.Name, Chars: len(sample.Text), Run: run, WallMs: wallMs}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.OutChars = len(pr.Paraphrased)
	return r
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-----|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %9s | %9s | %5s |\n", r.Sample, r.Chars, r.Run, "FAIL", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %d | %9d | %9d | %5.2f |\n", r.Sample, r.Chars, r.Run, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(client *http.Client, baseURL, model string) {
	fmt.Printf("Quality test against %s using model: %s\n", baseURL, model)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, len(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		start := time.Now()
		pr, err := paraphrase(client, baseURL, sample.Text)
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}

		fmt.Printf("ORIG: %s\n", pr.Original)
		fmt.Printf("OUT:  %s\n", pr.Paraphrased)
		fmt.Printf("      [%dms, %d->%d chars]\n", time.Since(start).Milliseconds(), len(pr.Original), len(pr.Paraphrased))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalWall int64
	var totalChars int
	minRun, maxRun := ok[0], ok[0]
	for _, r := range ok {
		totalWall += r.WallMs
		totalChars += r.Chars
		if r.WallMs < minRun.WallMs {
			minRun = r
		}
		if r.WallMs > maxRun.WallMs {
			maxRun = r
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalWall)/float64(totalChars))
	fmt.Printf("- Min wall: %dms (%s)\n", minRun.WallMs, minRun.Sample)
	fmt.Printf("- Max wall: %dms (%s)\n", maxRun.WallMs, maxRun.Sample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, model string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Model:     model,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
