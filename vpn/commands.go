package vpn

// Status runs `nordvpn status`.
func (r *Runner) Status(onSuccess func(Status), onError func(error)) *Invocation[Status] {
	return invoke(r, []string{"status"}, ParseStatus, onSuccess, onError)
}

// Account runs `nordvpn account`.
func (r *Runner) Account(onSuccess func(Account), onError func(error)) *Invocation[Account] {
	return invoke(r, []string{"account"}, ParseAccount, onSuccess, onError)
}

// Settings runs `nordvpn settings`.
func (r *Runner) Settings(onSuccess func(Settings), onError func(error)) *Invocation[Settings] {
	return invoke(r, []string{"settings"}, ParseSettings, onSuccess, onError)
}

// Countries runs `nordvpn countries`.
func (r *Runner) Countries(onSuccess func([]Country), onError func(error)) *Invocation[[]Country] {
	return invoke(r, []string{"countries"}, ParseCountries, onSuccess, onError)
}

// Cities runs `nordvpn cities <country>`.
func (r *Runner) Cities(country string, onSuccess func([]string), onError func(error)) *Invocation[[]string] {
	return invoke(r, []string{"cities", country}, ParseCSVLine, onSuccess, onError)
}

// QuickConnect runs `nordvpn connect [country]`.
func (r *Runner) QuickConnect(country string, onSuccess func(Empty), onError func(error)) *Invocation[Empty] {
	return invoke[Empty](r, QuickConnectArgs(country), nil, onSuccess, onError)
}

// Connect runs `nordvpn connect` for the target. An invalid target is
// returned as an error and no process is started.
func (r *Runner) Connect(target Target, onSuccess func(Empty), onError func(error)) (*Invocation[Empty], error) {
	args, err := target.Args()
	if err != nil {
		return nil, err
	}
	return invoke[Empty](r, args, nil, onSuccess, onError), nil
}

// Disconnect runs `nordvpn disconnect`.
func (r *Runner) Disconnect(onSuccess func(Empty), onError func(error)) *Invocation[Empty] {
	return invoke[Empty](r, []string{"disconnect"}, nil, onSuccess, onError)
}
