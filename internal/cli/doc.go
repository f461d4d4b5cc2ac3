// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the fundus-chat command line. The binary has no
// subcommands; everything is a flag that feeds into configuration.
package cli
