// Package utils provides request validation shared by the HTTP and streaming
// handlers.
//
// Validation:
//   - String length and format validation
//   - ID, tool ID and category validation
//   - Tool parameter shape limits (count, depth, list length)
//
// Example Usage:
//
//	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
//	    return err
//	}
package utils
