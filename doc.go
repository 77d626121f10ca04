// Package swarmexplore tracks what an exploring agent has already seen.
//
// What is swarm-explore?
//
//	A small, thread-safe library plus a replay CLI:
//		• explore/: the growable exploration grid: point registration, border
//		  signals, coverage and efficiency statistics, explored regions and frontier
//		• trace/:   reading recorded agent traces (text or JSON) and replaying them
//		• cmd/swarm-explore: replays a trace, prints a JSON report, serves metrics
//
// Quick ASCII example, after visiting (0,0), (1,0) and (2,1):
//
//	    # # .
//	    . . #
//
// The known world is 3×2, half of it explored.
//
//	go get github.com/Kolefn/swarm-explore/explore
package swarmexplore
