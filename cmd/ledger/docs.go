package main

// @title Stock Ledger API
// @version 1.0
// @description Inventory ledger for a small retail operation: stock-in, stock-out, reversal, adjustment and period summaries.

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name Ledger
// @tag.description Stock mutation endpoints

// @tag.name Inventory
// @tag.description Stock on hand queries

// @tag.name Reports
// @tag.description Financial summary endpoints

// @tag.name Health
// @tag.description Health check endpoints
