package pricing

import (
	"encoding/json"
	"errors"
	"sort"
)

var ErrUnknownService = errors.New("unknown service id")

// Engine binds one typed service calculator behind raw JSON payloads so the
// transport and persistence layers never depend on per-service types.
type Engine struct {
	ID       string
	Name     string
	defaults func() any
	merge    func(cfg json.RawMessage) any
	quote    func(form, cfg json.RawMessage) (Quote, error)
}

func (e Engine) DefaultConfig() any { return e.defaults() }

// MergedConfig applies a stored config on top of the service defaults and
// returns the effective typed config. Keys absent from the stored config
// keep their defaults; a malformed config yields the defaults untouched.
func (e Engine) MergedConfig(cfg json.RawMessage) any { return e.merge(cfg) }

// Quote decodes the form and config and runs the calculator. The config is
// unmarshaled over the service defaults, so keys absent from the stored
// config keep their hardcoded values; a malformed config falls back to
// defaults entirely.
func (e Engine) Quote(form, cfg json.RawMessage) (Quote, error) {
	return e.quote(form, cfg)
}

func newEngine[F any, C any](id, name string, defaults func() C, calc func(F, C) Quote) Engine {
	merge := func(cfg json.RawMessage) C {
		c := defaults()
		if len(cfg) > 0 {
			if err := json.Unmarshal(cfg, &c); err != nil {
				c = defaults()
			}
		}
		return c
	}
	return Engine{
		ID:       id,
		Name:     name,
		defaults: func() any { return defaults() },
		merge:    func(cfg json.RawMessage) any { return merge(cfg) },
		quote: func(form, cfg json.RawMessage) (Quote, error) {
			var f F
			if len(form) > 0 {
				if err := json.Unmarshal(form, &f); err != nil {
					return Quote{}, err
				}
			}
			return calc(f, merge(cfg)), nil
		},
	}
}

var engines = map[string]Engine{}

func register(e Engine) {
	engines[e.ID] = e
}

func init() {
	register(newEngine(ServiceSaniClean, "SaniClean", DefaultSaniCleanConfig, CalculateSaniClean))
	register(newEngine(ServiceSaniScrub, "SaniScrub", DefaultSaniScrubConfig, CalculateSaniScrub))
	register(newEngine(ServiceCarpet, "Carpet Cleaning", DefaultCarpetConfig, CalculateCarpet))
	register(newEngine(ServiceFoamingDrain, "Foaming Drain", DefaultFoamingDrainConfig, CalculateFoamingDrain))
	register(newEngine(ServiceElectrostatic, "Electrostatic Spray", DefaultElectrostaticConfig, CalculateElectrostatic))
	register(newEngine(ServiceSaniPod, "SaniPod", DefaultSaniPodConfig, CalculateSaniPod))
	register(newEngine(ServiceStripWax, "Strip & Wax", DefaultStripWaxConfig, CalculateStripWax))
	register(newEngine(ServiceRPMWindows, "RPM Windows", DefaultRPMWindowsConfig, CalculateRPMWindows))
	register(newEngine(ServiceGreaseTrap, "Grease Trap", DefaultGreaseTrapConfig, CalculateGreaseTrap))
	register(newEngine(ServiceMicrofiber, "Microfiber Mopping", DefaultMicrofiberConfig, CalculateMicrofiber))
}

// Lookup returns the engine for a service id.
func Lookup(serviceID string) (Engine, error) {
	e, ok := engines[serviceID]
	if !ok {
		return Engine{}, ErrUnknownService
	}
	return e, nil
}

// Engines lists all registered engines in stable id order.
func Engines() []Engine {
	out := make([]Engine, 0, len(engines))
	for _, e := range engines {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
