//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/stationhq/station/backend-go/internal/canvas"
	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/render"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

var cv *canvas.Canvas

func main() {
	cv = canvas.New(canvas.Size{Width: 1080, Height: 1080})

	stationEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	stationEngine.Set("addElement", js.FuncOf(addElement))
	stationEngine.Set("updateElement", js.FuncOf(updateElement))
	stationEngine.Set("removeElement", js.FuncOf(removeElement))
	stationEngine.Set("reorderElement", js.FuncOf(reorderElement))
	stationEngine.Set("toggleVisibility", js.FuncOf(toggleVisibility))
	stationEngine.Set("toggleLock", js.FuncOf(toggleLock))
	stationEngine.Set("selectElement", js.FuncOf(selectElement))
	stationEngine.Set("setSelection", js.FuncOf(setSelection))
	stationEngine.Set("addToSelection", js.FuncOf(addToSelection))
	stationEngine.Set("toggleSelection", js.FuncOf(toggleSelection))
	stationEngine.Set("clearSelection", js.FuncOf(clearSelection))
	stationEngine.Set("copySelection", js.FuncOf(copySelection))
	stationEngine.Set("paste", js.FuncOf(paste))
	stationEngine.Set("duplicateSelection", js.FuncOf(duplicateSelection))
	stationEngine.Set("deleteSelection", js.FuncOf(deleteSelection))
	stationEngine.Set("undo", js.FuncOf(undo))
	stationEngine.Set("redo", js.FuncOf(redo))
	stationEngine.Set("pushHistory", js.FuncOf(pushHistory))
	stationEngine.Set("alignElements", js.FuncOf(alignElements))
	stationEngine.Set("distributeElements", js.FuncOf(distributeElements))
	stationEngine.Set("setCanvasSize", js.FuncOf(setCanvasSize))
	stationEngine.Set("applyPreset", js.FuncOf(applyPreset))
	stationEngine.Set("setZoom", js.FuncOf(setZoom))
	stationEngine.Set("setShowGrid", js.FuncOf(setShowGrid))
	stationEngine.Set("setSnapToGrid", js.FuncOf(setSnapToGrid))
	stationEngine.Set("setGridSize", js.FuncOf(setGridSize))
	stationEngine.Set("applyTemplate", js.FuncOf(applyTemplate))

	// --- Queries (frontend ← engine) ---
	stationEngine.Set("getState", js.FuncOf(getState))
	stationEngine.Set("render", js.FuncOf(renderCommands))
	stationEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	stationEngine.Set("getPresets", js.FuncOf(getPresets))
	stationEngine.Set("describe", js.FuncOf(describe))
	stationEngine.Set("exportTemplate", js.FuncOf(exportTemplate))

	js.Global().Set("stationEngine", stationEngine)
	js.Global().Set("stationWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func addElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing element JSON"})
	}

	var el element.Element
	if err := json.Unmarshal([]byte(args[0].String()), &el); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	if el.ID == "" {
		el.ID = typeid.NewElementID()
	}
	cv.AddElement(el)
	return js.ValueOf(map[string]interface{}{"ok": true, "id": el.ID})
}

func updateElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	var changes map[string]any
	if err := json.Unmarshal([]byte(args[1].String()), &changes); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	cv.UpdateElement(args[0].String(), changes)
	return nil
}

func removeElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.RemoveElement(args[0].String())
	return nil
}

func reorderElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	cv.Reorder(args[0].String(), canvas.ReorderDirection(args[1].String()))
	return nil
}

func toggleVisibility(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.ToggleVisibility(args[0].String())
	return nil
}

func toggleLock(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.ToggleLock(args[0].String())
	return nil
}

func selectElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		cv.SetSelectedID("")
		return nil
	}
	cv.SetSelectedID(args[0].String())
	return nil
}

func setSelection(this js.Value, args []js.Value) interface{} {
	cv.SelectMultiple(stringSlice(args))
	return nil
}

func addToSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.AddToSelection(args[0].String())
	return nil
}

func toggleSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.ToggleSelection(args[0].String())
	return nil
}

func clearSelection(this js.Value, args []js.Value) interface{} {
	cv.ClearSelection()
	return nil
}

func copySelection(this js.Value, args []js.Value) interface{} {
	cv.CopySelection()
	return nil
}

func paste(this js.Value, args []js.Value) interface{} {
	cv.PasteClipboard()
	return nil
}

func duplicateSelection(this js.Value, args []js.Value) interface{} {
	cv.DuplicateSelection()
	return nil
}

func deleteSelection(this js.Value, args []js.Value) interface{} {
	cv.DeleteSelection()
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	cv.Undo()
	return nil
}

func redo(this js.Value, args []js.Value) interface{} {
	cv.Redo()
	return nil
}

func pushHistory(this js.Value, args []js.Value) interface{} {
	cv.PushHistory()
	return nil
}

func alignElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.AlignElements(canvas.AlignDirection(args[0].String()))
	return nil
}

func distributeElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.DistributeElements(canvas.DistributeAxis(args[0].String()))
	return nil
}

func setCanvasSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	cv.SetSize(args[0].Int(), args[1].Int())
	return nil
}

func applyPreset(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.ApplyPreset(args[0].String())
	return nil
}

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.SetZoom(args[0].Float())
	return nil
}

func setShowGrid(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.SetShowGrid(args[0].Bool())
	return nil
}

func setSnapToGrid(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.SetSnapToGrid(args[0].Bool())
	return nil
}

func setGridSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cv.SetGridSize(args[0].Float())
	return nil
}

func applyTemplate(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.ValueOf(map[string]interface{}{"error": "expected width, height, elements JSON"})
	}
	var defs []element.Element
	if err := json.Unmarshal([]byte(args[2].String()), &defs); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	cv.ApplyTemplate(args[0].Int(), args[1].Int(), defs)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

func getState(this js.Value, args []js.Value) interface{} {
	size := cv.Size()
	state := map[string]interface{}{
		"elements":   cv.Elements(),
		"selection":  cv.SelectedIDs(),
		"width":      size.Width,
		"height":     size.Height,
		"preset":     cv.Preset(),
		"zoom":       cv.Zoom(),
		"showGrid":   cv.ShowGrid(),
		"snapToGrid": cv.SnapToGrid(),
		"gridSize":   cv.GridSize(),
		"canUndo":    cv.CanUndo(),
		"canRedo":    cv.CanRedo(),
	}
	return toJSON(state)
}

func renderCommands(this js.Value, args []js.Value) interface{} {
	return toJSON(render.CompileDrawCommands(cv.Elements()))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	bounds, ok := cv.SelectionBounds()
	if !ok {
		return js.ValueOf("null")
	}
	return toJSON(bounds)
}

func getPresets(this js.Value, args []js.Value) interface{} {
	return toJSON(canvas.Presets())
}

func describe(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(cv.Describe())
}

func exportTemplate(this js.Value, args []js.Value) interface{} {
	width, height, defs := cv.ExportTemplate()
	return toJSON(map[string]interface{}{
		"width":    width,
		"height":   height,
		"elements": defs,
	})
}

func stringSlice(args []js.Value) []string {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return nil
	}
	arr := args[0]
	ids := make([]string, arr.Length())
	for i := range ids {
		ids[i] = arr.Index(i).String()
	}
	return ids
}

func toJSON(v interface{}) js.Value {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(`{"error":"marshal failed"}`)
	}
	return js.ValueOf(string(data))
}
