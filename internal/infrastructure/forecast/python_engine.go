// Package forecast implementa el adaptador hacia el motor de pronóstico
// externo: un script Python que recibe el producto y sus órdenes abiertas en
// JSON por stdin y escribe la proyección en JSON por stdout.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	appforecast "github.com/mpilco/inventario-api/internal/application/forecast"
)

// Verificar en tiempo de compilación que PythonEngine implementa Engine.
var _ appforecast.Engine = (*PythonEngine)(nil)

// PythonEngine ejecuta el script de predicción como subproceso. El backend
// trata la proyección como opaca salvo los campos de alerta.
type PythonEngine struct {
	pythonBin  string
	scriptPath string
	timeout    time.Duration
}

// NewPythonEngine construye el adaptador. Si scriptPath está vacío las
// llamadas devuelven error descriptivo en lugar de panic.
func NewPythonEngine(pythonBin, scriptPath string, timeout time.Duration) *PythonEngine {
	if pythonBin == "" {
		pythonBin = "python3"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PythonEngine{pythonBin: pythonBin, scriptPath: scriptPath, timeout: timeout}
}

// resultEnvelope extrae del JSON del motor únicamente las proyecciones que el
// backend interpreta; el resto del documento viaja intacto en Result.Raw.
type resultEnvelope struct {
	Proyecciones []appforecast.Proyeccion `json:"proyecciones"`
}

// Predict serializa la entrada, ejecuta el script y parsea la salida. Un exit
// code distinto de cero devuelve el stderr del script como error.
func (e *PythonEngine) Predict(ctx context.Context, in appforecast.Input) (*appforecast.Result, error) {
	if e.scriptPath == "" {
		return nil, fmt.Errorf("%w: FORECAST_SCRIPT_PATH no configurado", appforecast.ErrEngine)
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("forecast: serializar entrada: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.pythonBin, e.scriptPath)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: excedió el tiempo límite de %s", appforecast.ErrEngine, e.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: terminó con error: %s", appforecast.ErrEngine, msg)
	}

	raw := bytes.TrimSpace(stdout.Bytes())
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: no devolvió JSON válido", appforecast.ErrEngine)
	}

	var env resultEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: parsear proyecciones: %v", appforecast.ErrEngine, err)
	}

	return &appforecast.Result{
		Raw:          json.RawMessage(raw),
		Proyecciones: env.Proyecciones,
	}, nil
}
