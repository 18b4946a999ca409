// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is a chat message kept in the local log of an owner/friend pair.
// Messages are never delivered to the friend's device.
type Message struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SenderCode  string `json:"senderId"`
	SenderName  string `json:"senderName"`
	TimestampMs int64  `json:"timestamp"`
}
