package mds

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the coordinator-only structured output record of §6: the
// result of one multistart run, ready for JSON serialization or a
// human-readable summary.
type Report struct {
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	NTrials        int       `json:"ntrials"`
	FunEvals       uint64    `json:"funevals"`
	BestTrial      int       `json:"best_trial"`
	BestIterations int       `json:"best_iterations"`
	BestNfev       int       `json:"best_nfev"`
	BestPoint      []float64 `json:"best_point"`
	BestFx         float64   `json:"best_fx"`
}

// WriteJSON writes the report as indented JSON, mirroring the reference
// driver's write_results_to_json (an out-of-scope external collaborator
// there; implemented here with the standard library, since no JSON
// library appears anywhere in the retrieved corpus for this domain).
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable summary the reference driver prints
// to stdout before calling write_results_to_json, kept distinct from
// WriteJSON so either sink can be swapped independently.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "FINAL RESULTS:\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Elapsed time = %.3f s\n", r.ElapsedSeconds); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total number of trials = %d\n", r.NTrials); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total number of function evaluations = %d\n", r.FunEvals); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best result at trial %d used %d iterations, %d function calls and returned\n",
		r.BestTrial, r.BestIterations, r.BestNfev); err != nil {
		return err
	}
	for i, xi := range r.BestPoint {
		if _, err := fmt.Fprintf(w, "x[%3d] = %15.7e \n", i, xi); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "f(x) = %15.7e\n", r.BestFx)
	return err
}
