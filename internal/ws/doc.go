// Package ws streams filesystem watch events to clients over WebSocket.
//
// Protocol (JSON messages):
//
//	client -> {"type": "watch", "path": "/project/src"}
//	server -> {"type": "watch_started", "subscription_id": "...", "path": "..."}
//	server -> {"type": "watch_event", "subscription_id": "...", "event": {...}}
//	client -> {"type": "unwatch", "subscription_id": "..."}
//	server -> {"type": "watch_stopped", "subscription_id": "...", "path": "..."}
//
// A "ping" message gets a "pong" reply. Subscriptions are scoped to the
// connection and cancelled on disconnect.
package ws
