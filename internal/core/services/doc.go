// Package services implements the driving port interfaces.
// Services contain the core routing logic and orchestrate
// calls to driven ports (specialists, scope filter, session store).
//
// The routing path is pure computation over in-memory text: no network
// or disk access happens between receiving a query and returning its answer.
package services
