package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/gostonefire/filelinkedlist"
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file")
	name := flag.String("name", "", "Name of the store file (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *name != "" {
		cfg.Store.Name = *name
	}

	fll, info, err := openOrCreate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer fll.CloseFile()

	fmt.Printf("Store %q open, capacity %d records, file size %d bytes\n", cfg.Store.Name, info.Capacity, info.FileSize)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		runCommand(fll, args)
	}
}

// openOrCreate - Opens the configured store file, or creates it after asking the
// operator for a capacity when it doesn't exist yet
func openOrCreate(cfg *CLIConfig) (fll *filelinkedlist.FileLinkedList, info filelinkedlist.ListInfo, err error) {
	fll, info, err = filelinkedlist.NewFromExistingFile(cfg.Store.Name)
	if err == nil {
		return
	}

	fmt.Printf("Store file doesn't exist, creating a new one.\n")
	fmt.Printf("Maximum number of records [%d]: ", cfg.Store.DefaultCapacity)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return
	}

	capacity := cfg.Store.DefaultCapacity
	line = strings.TrimSpace(line)
	if line != "" {
		var n int64
		n, err = strconv.ParseInt(line, 10, 32)
		if err != nil {
			err = fmt.Errorf("invalid capacity %q: %s", line, err)
			return
		}
		capacity = int32(n)
	}

	fll, info, err = filelinkedlist.NewFileLinkedList(cfg.Store.Name, capacity)

	return
}

func runCommand(fll *filelinkedlist.FileLinkedList, args []string) {
	switch args[0] {
	case "help":
		printHelp()

	case "insert", "insertord":
		if len(args) != 3 {
			fmt.Printf("usage: %s <key> <name>\n", args[0])
			return
		}
		key, err := parseKey(args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		if args[0] == "insert" {
			err = fll.Insert(key, args[2])
		} else {
			err = fll.InsertOrdered(key, args[2])
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("record inserted")

	case "get":
		if len(args) != 2 {
			fmt.Println("usage: get <key>")
			return
		}
		key, err := parseKey(args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		name, err := fll.Get(key)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("key=%d name=%s\n", key, name)

	case "delete":
		if len(args) != 2 {
			fmt.Println("usage: delete <key>")
			return
		}
		key, err := parseKey(args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		if err = fll.Delete(key); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("record deleted")

	case "list":
		slots, err := fll.ActiveRecords()
		if err != nil {
			fmt.Println(err)
			return
		}
		if len(slots) == 0 {
			fmt.Println("list is empty")
			return
		}
		for _, s := range slots {
			fmt.Printf("slot %d: key=%d name=%s next=%d prev=%d\n", s.SlotNo, s.Key, s.Name, s.Next, s.Prev)
		}

	case "dump":
		slots, err := fll.AllSlots()
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, s := range slots {
			if s.InUse {
				fmt.Printf("slot %d: key=%d name=%s next=%d prev=%d\n", s.SlotNo, s.Key, s.Name, s.Next, s.Prev)
			} else {
				fmt.Printf("slot %d: [free] next=%d prev=%d\n", s.SlotNo, s.Next, s.Prev)
			}
		}

	case "free":
		slotNos, err := fll.FreeSlots()
		if err != nil {
			fmt.Println(err)
			return
		}
		if len(slotNos) == 0 {
			fmt.Println("no free slots")
			return
		}
		for _, n := range slotNos {
			fmt.Printf("slot %d\n", n)
		}

	case "stat":
		stat, err := fll.Stat()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("records=%d free=%d capacity=%d\n", stat.Records, stat.FreeSlots, stat.Capacity)

	default:
		fmt.Printf("unknown command %q, try 'help'\n", args[0])
	}
}

func parseKey(s string) (key int32, err error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		err = fmt.Errorf("invalid key %q", s)
		return
	}

	key = int32(n)

	return
}

func printHelp() {
	fmt.Println("Available Commands:")
	fmt.Println("  insert <key> <name>    - Insert a record at the tail of the list")
	fmt.Println("  insertord <key> <name> - Insert a record keeping the list key ordered")
	fmt.Println("  get <key>              - Look up a record by key")
	fmt.Println("  delete <key>           - Delete a record by key")
	fmt.Println("  list                   - Print active records in list order")
	fmt.Println("  dump                   - Print every slot in physical order")
	fmt.Println("  free                   - Print free slots in reuse order")
	fmt.Println("  stat                   - Print usage statistics")
	fmt.Println("  exit                   - Quit")
	fmt.Println("Quote names containing spaces, e.g. insert 7 \"Ada Lovelace\"")
}
