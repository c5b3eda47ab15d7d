// Package core provides a small, stable facade over emojiscan's internal
// engine for programs that want to embed the scan instead of shelling out
// to the CLI.
//
// Example:
//
//	reps, err := core.Scan(ctx, core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	for _, r := range reps { fmt.Println(r.Path, r.Emoji) }
package core
