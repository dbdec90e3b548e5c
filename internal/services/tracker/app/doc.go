// Package server composes and runs the cycling tracker process boundary.
//
// One gRPC server hosts both CyclingTracker and SessionAuth. Workout data
// and credentials live in SQLite; session tokens live in Redis.
package server
