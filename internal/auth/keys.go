package auth

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Client is an API consumer identified by name and a secret key.
type Client struct {
	Name         string `json:"name"`
	KeyHash      string `json:"key_hash"`
	RateLimitRPM int    `json:"rate_limit_rpm"` // Requests per minute, 0 = unlimited
	Enabled      bool   `json:"enabled"`
}

// KeysConfig is the layout of keys.json.
type KeysConfig struct {
	Clients     []Client `json:"clients"`
	IPWhitelist []string `json:"ip_whitelist"` // CIDR notation, empty = allow all
}

// ClientStore authenticates API clients and enforces their limits.
type ClientStore struct {
	mu          sync.RWMutex
	path        string
	clients     map[string]*Client
	ipWhitelist []*net.IPNet
	rateLimiter *RateLimiter
}

// NewClientStore loads a store from a keys file.
func NewClientStore(path string) (*ClientStore, error) {
	store := &ClientStore{
		path:        path,
		clients:     make(map[string]*Client),
		rateLimiter: NewRateLimiter(),
	}

	if err := store.LoadFromFile(path); err != nil {
		return nil, err
	}

	return store, nil
}

// Path is the keys file the store was loaded from.
func (s *ClientStore) Path() string {
	return s.path
}

// Reload reads the keys file again. On error the previous clients stay.
func (s *ClientStore) Reload() error {
	return s.LoadFromFile(s.path)
}

// LoadFromFile replaces the clients with the contents of a keys file.
func (s *ClientStore) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read keys file: %w", err)
	}

	var cfg KeysConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse keys file: %w", err)
	}

	whitelist := make([]*net.IPNet, 0, len(cfg.IPWhitelist))
	for _, cidr := range cfg.IPWhitelist {
		// Handle single IP addresses without CIDR notation
		if !strings.Contains(cidr, "/") {
			if strings.Contains(cidr, ":") {
				cidr = cidr + "/128" // IPv6
			} else {
				cidr = cidr + "/32" // IPv4
			}
		}
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return fmt.Errorf("invalid IP whitelist entry '%s': %w", cidr, err)
		}
		whitelist = append(whitelist, ipNet)
	}

	clients := make(map[string]*Client)
	for i := range cfg.Clients {
		c := &cfg.Clients[i]
		if !c.Enabled {
			continue
		}
		clients[strings.ToLower(c.Name)] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Buckets survive a reload unless the client's rate changed.
	for name := range s.clients {
		if c, ok := clients[name]; !ok || c.RateLimitRPM <= 0 {
			s.rateLimiter.Remove(name)
		}
	}
	for name, c := range clients {
		if c.RateLimitRPM > 0 {
			s.rateLimiter.EnsureLimit(name, c.RateLimitRPM)
		}
	}

	s.clients = clients
	s.ipWhitelist = whitelist

	return nil
}

// Authenticate checks a client name and key.
func (s *ClientStore) Authenticate(name, key string) (*Client, bool) {
	s.mu.RLock()
	client, exists := s.clients[strings.ToLower(name)]
	s.mu.RUnlock()
	if !exists {
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.KeyHash), []byte(key)); err != nil {
		return nil, false
	}

	return client, true
}

// CheckIPAllowed verifies if an IP address is in the whitelist
// Returns true if whitelist is empty (allow all) or IP is whitelisted
func (s *ClientStore) CheckIPAllowed(ipStr string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.ipWhitelist) == 0 {
		return true
	}

	host := ipStr
	if strings.Contains(ipStr, ":") {
		var err error
		host, _, err = net.SplitHostPort(ipStr)
		if err != nil {
			// Might be IPv6 without port
			host = ipStr
		}
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}

	for _, ipNet := range s.ipWhitelist {
		if ipNet.Contains(ip) {
			return true
		}
	}

	return false
}

// CheckRateLimit reports whether the client may make another request.
// Unknown clients are refused.
func (s *ClientStore) CheckRateLimit(name string) bool {
	name = strings.ToLower(name)
	s.mu.RLock()
	client, exists := s.clients[name]
	s.mu.RUnlock()

	if !exists {
		return false
	}
	if client.RateLimitRPM <= 0 {
		return true
	}

	return s.rateLimiter.Allow(name)
}

// ClientCount returns the number of enabled clients
func (s *ClientStore) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// HashKey generates a bcrypt hash for a client key, for keys.json.
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
