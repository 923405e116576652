package compiler

import (
	"strconv"
	"strings"

	"k8s.io/utils/pointer"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	"github.com/hazelcast/cache-config-engine/internal/config"
)

func compilePersistence(p v1alpha1.PersistentCache) *config.Persistence {
	out := &config.Persistence{Passivation: pointer.BoolPtr(p.Passivation)}
	conn := p.Connection
	switch p.Storage {
	case v1alpha1.StorageFileStore:
		out.FileStore = &config.Store{Path: conn.Path}
	case v1alpha1.StorageSoftIndexFileStore:
		out.SoftIndexFileStore = &config.Store{
			Data:  &config.StorePath{Path: conn.DataPath},
			Index: &config.StorePath{Path: conn.IndexPath},
		}
	case v1alpha1.StorageRocksDB:
		out.RocksDBStore = &config.Store{Path: conn.Location}
	case v1alpha1.StorageJDBC:
		out.JDBCStore = &config.Store{
			ConnectionPool: &config.ConnectionPool{
				ConnectionURL: conn.ConnectionURL,
				Driver:        conn.Driver,
				Username:      conn.Username,
				Password:      conn.Password,
			},
			Table: &config.Table{Prefix: conn.TablePrefix},
		}
	case v1alpha1.StorageRemote:
		out.RemoteStore = &config.Store{
			Cache:         conn.RemoteCacheName,
			RemoteServers: parseServers(conn.Servers),
		}
	case v1alpha1.StorageCustom:
		out.CustomStore = &config.Store{Class: conn.Class}
	}
	return out
}

func decompilePersistence(p *config.Persistence) (v1alpha1.PersistentCache, bool) {
	out := v1alpha1.PersistentCache{Passivation: p.Passivation != nil && *p.Passivation}
	conn := &out.Connection
	switch {
	case p.FileStore != nil:
		out.Storage = v1alpha1.StorageFileStore
		conn.Path = p.FileStore.Path
	case p.SoftIndexFileStore != nil:
		out.Storage = v1alpha1.StorageSoftIndexFileStore
		if p.SoftIndexFileStore.Data != nil {
			conn.DataPath = p.SoftIndexFileStore.Data.Path
		}
		if p.SoftIndexFileStore.Index != nil {
			conn.IndexPath = p.SoftIndexFileStore.Index.Path
		}
	case p.RocksDBStore != nil:
		out.Storage = v1alpha1.StorageRocksDB
		conn.Location = p.RocksDBStore.Path
	case p.JDBCStore != nil:
		out.Storage = v1alpha1.StorageJDBC
		if cp := p.JDBCStore.ConnectionPool; cp != nil {
			conn.ConnectionURL = cp.ConnectionURL
			conn.Driver = cp.Driver
			conn.Username = cp.Username
			conn.Password = cp.Password
		}
		if p.JDBCStore.Table != nil {
			conn.TablePrefix = p.JDBCStore.Table.Prefix
		}
	case p.RemoteStore != nil:
		out.Storage = v1alpha1.StorageRemote
		conn.RemoteCacheName = p.RemoteStore.Cache
		conn.Servers = joinServers(p.RemoteStore.RemoteServers)
	case p.CustomStore != nil:
		out.Storage = v1alpha1.StorageCustom
		conn.Class = p.CustomStore.Class
	default:
		return out, false
	}
	return out, true
}

// parseServers reads a comma separated list of host[:port].
func parseServers(s string) []config.RemoteServer {
	var servers []config.RemoteServer
	for _, addr := range strings.Split(s, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		server := config.RemoteServer{Host: addr}
		if i := strings.LastIndexByte(addr, ':'); i > 0 {
			if port, err := strconv.ParseInt(addr[i+1:], 10, 32); err == nil {
				server.Host = addr[:i]
				server.Port = config.NewInt(port)
			}
		}
		servers = append(servers, server)
	}
	return servers
}

func joinServers(servers []config.RemoteServer) string {
	addrs := make([]string, 0, len(servers))
	for _, s := range servers {
		if s.Port != nil {
			addrs = append(addrs, s.Host+":"+strconv.FormatInt(s.Port.Value(), 10))
			continue
		}
		addrs = append(addrs, s.Host)
	}
	return strings.Join(addrs, ",")
}
